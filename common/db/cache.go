package db

// TxCache 事务级写缓存: 执行器的所有写先落在这里,执行成功后一次性
// 通过Batch落盘,失败则整体丢弃,保证单笔交易原子生效.
type TxCache struct {
	kv    KV
	cache map[string][]byte
	keys  []string // 首次写入顺序
}

//NewTxCache 在底层KV之上创建事务缓存
func NewTxCache(kv KV) *TxCache {
	return &TxCache{
		kv:    kv,
		cache: make(map[string][]byte),
	}
}

//Get 优先读缓存,nil标记视为已删除
func (c *TxCache) Get(key []byte) ([]byte, error) {
	if value, ok := c.cache[string(key)]; ok {
		if value == nil {
			return nil, ErrNotFound
		}
		return cloneByte(value), nil
	}
	return c.kv.Get(key)
}

//Set 写入缓存,value为nil表示提交时删除该key
func (c *TxCache) Set(key []byte, value []byte) error {
	skey := string(key)
	if _, ok := c.cache[skey]; !ok {
		c.keys = append(c.keys, skey)
	}
	if value == nil {
		c.cache[skey] = nil
	} else {
		c.cache[skey] = cloneByte(value)
	}
	return nil
}

//Commit 把缓存按首次写入顺序放入batch
func (c *TxCache) Commit(batch Batch) {
	for _, skey := range c.keys {
		value := c.cache[skey]
		if value == nil {
			batch.Delete([]byte(skey))
		} else {
			batch.Set([]byte(skey), value)
		}
	}
}
