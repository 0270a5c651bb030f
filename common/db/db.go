package db

import (
	"errors"
	"fmt"
)

//ErrNotFound key不存在
var ErrNotFound = errors.New("ErrNotFound")

//列表查询方向
const (
	ListDESC = int32(0)
	ListASC  = int32(1)
)

//KV 状态数据库最小接口
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

//KVDB 支持前缀遍历的KV
type KVDB interface {
	KV
	List(prefix, key []byte, count, direction int32) (values [][]byte, err error)
}

//DB 数据库完整接口
type DB interface {
	KVDB
	Delete(key []byte) error
	NewBatch(sync bool) Batch
	Close()
}

//Batch 批量原子写
type Batch interface {
	Set(key, value []byte)
	Delete(key []byte)
	Write() error
}

const (
	goLevelDBBackendStr = "goleveldb"
	levelDBBackendStr   = "leveldb" // legacy, defaults to goleveldb.
	memDBBackendStr     = "memdb"
)

type dbCreator func(name string, dir string, cache int32) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

//NewDB 创建数据库,backend不支持或打开失败直接panic
func NewDB(name string, backend string, dir string, cache int32) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		panic(fmt.Sprintf("initializing DB error: unsupported backend %v", backend))
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		panic(fmt.Sprintf("initializing DB error: %v", err))
	}
	return db
}
