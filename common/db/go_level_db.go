package db

import (
	"bytes"
	"path"

	"github.com/syndtr/goleveldb/leveldb"
	dberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

func init() {
	dbCreator := func(name string, dir string, cache int32) (DB, error) {
		return NewGoLevelDB(name, dir, cache)
	}
	registerDBCreator(levelDBBackendStr, dbCreator, false)
	registerDBCreator(goLevelDBBackendStr, dbCreator, false)
}

//GoLevelDB goleveldb做的持久化状态库
type GoLevelDB struct {
	db *leveldb.DB
}

//NewGoLevelDB 打开(必要时修复)数据库文件
func NewGoLevelDB(name string, dir string, cache int32) (*GoLevelDB, error) {
	dbPath := path.Join(dir, name+".db")
	if cache <= 0 {
		cache = 64
	}
	handles := int(cache)
	if handles < 16 {
		handles = 16
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: handles,
		BlockCacheCapacity:     int(cache) / 2 * opt.MiB,
		WriteBuffer:            int(cache) / 4 * opt.MiB, // Two of these are used internally
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*dberrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dbPath, nil)
	}
	if err != nil {
		return nil, err
	}
	return &GoLevelDB{db: db}, nil
}

//Get 不存在返回ErrNotFound
func (db *GoLevelDB) Get(key []byte) ([]byte, error) {
	res, err := db.db.Get(key, nil)
	if err != nil {
		if err == dberrors.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

//Set 单条写入
func (db *GoLevelDB) Set(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

//Delete 单条删除
func (db *GoLevelDB) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

//Close 关闭数据库
func (db *GoLevelDB) Close() {
	db.db.Close()
}

//List 前缀分页遍历,key为空时从头(尾)开始,否则从key的下一条开始
func (db *GoLevelDB) List(prefix, key []byte, count, direction int32) ([][]byte, error) {
	iter := db.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	var values [][]byte
	var ok bool
	if direction == ListASC {
		if len(key) == 0 {
			ok = iter.First()
		} else {
			ok = iter.Seek(key)
			if ok && bytes.Equal(iter.Key(), key) {
				ok = iter.Next()
			}
		}
		for ; ok; ok = iter.Next() {
			values = append(values, cloneByte(iter.Value()))
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
	} else {
		if len(key) == 0 {
			ok = iter.Last()
		} else {
			if iter.Seek(key) {
				ok = iter.Prev()
			} else {
				ok = iter.Last()
			}
		}
		for ; ok; ok = iter.Prev() {
			values = append(values, cloneByte(iter.Value()))
			if count > 0 && int32(len(values)) >= count {
				break
			}
		}
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return values, nil
}

//NewBatch 创建批量写
func (db *GoLevelDB) NewBatch(sync bool) Batch {
	return &goLevelDBBatch{db, new(leveldb.Batch), &opt.WriteOptions{Sync: sync}}
}

func cloneByte(v []byte) []byte {
	value := make([]byte, len(v))
	copy(value, v)
	return value
}

type goLevelDBBatch struct {
	db    *GoLevelDB
	batch *leveldb.Batch
	wop   *opt.WriteOptions
}

func (mBatch *goLevelDBBatch) Set(key, value []byte) {
	mBatch.batch.Put(key, value)
}

func (mBatch *goLevelDBBatch) Delete(key []byte) {
	mBatch.batch.Delete(key)
}

func (mBatch *goLevelDBBatch) Write() error {
	return mBatch.db.db.Write(mBatch.batch, mBatch.wop)
}
