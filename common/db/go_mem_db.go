package db

import (
	"sort"
	"strings"
	"sync"
)

// memdb 无需区分同步与异步操作,测试专用

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(memDBBackendStr, dbCreator, false)
}

//GoMemDB 内存KV,仅用于单测和临时账本
type GoMemDB struct {
	lock sync.RWMutex
	db   map[string][]byte
}

//NewGoMemDB 创建内存数据库
func NewGoMemDB(name string, dir string, cache int32) (*GoMemDB, error) {
	return &GoMemDB{db: make(map[string][]byte)}, nil
}

//Get 读取
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	if entry, ok := db.db[string(key)]; ok {
		return cloneByte(entry), nil
	}
	return nil, ErrNotFound
}

//Set 写入
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.db[string(key)] = cloneByte(value)
	return nil
}

//Delete 删除
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()
	delete(db.db, string(key))
	return nil
}

//Close 关闭
func (db *GoMemDB) Close() {
}

//List 前缀分页遍历,语义与GoLevelDB.List一致
func (db *GoMemDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()
	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if direction == ListDESC {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	var values [][]byte
	skip := len(key) > 0
	for _, k := range keys {
		if skip {
			// 从key的下一条开始
			if direction == ListASC && k <= string(key) {
				continue
			}
			if direction == ListDESC && k >= string(key) {
				continue
			}
		}
		values = append(values, cloneByte(db.db[k]))
		if count > 0 && int32(len(values)) >= count {
			break
		}
	}
	return values, nil
}

type kv struct{ k, v []byte }

type memBatch struct {
	db     *GoMemDB
	writes []kv
}

//NewBatch 创建批量写
func (db *GoMemDB) NewBatch(sync bool) Batch {
	return &memBatch{db: db}
}

func (b *memBatch) Set(key, value []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), cloneByte(value)})
}

func (b *memBatch) Delete(key []byte) {
	b.writes = append(b.writes, kv{cloneByte(key), nil})
}

func (b *memBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, kv := range b.writes {
		if kv.v == nil {
			delete(b.db.db, string(kv.k))
		} else {
			b.db.db[string(kv.k)] = kv.v
		}
	}
	return nil
}
