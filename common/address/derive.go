package address

import (
	"encoding/binary"
	"errors"

	"github.com/mrtoaf/rugpaperscissors/common"
	"github.com/mrtoaf/rugpaperscissors/common/crypto"
)

// ErrNoValidBump 所有bump都落在曲线上,实际上不可能发生
var ErrNoValidBump = errors.New("unable to find a valid bump seed")

// 游戏地址种子布局: prefix | creator | wager(8字节小端) | program | bump
func deriveSeed(prefix, creator string, wager uint64, program string, bump uint8) []byte {
	buf := make([]byte, 0, len(prefix)+len(creator)+8+len(program)+1)
	buf = append(buf, prefix...)
	buf = append(buf, creator...)
	var w [8]byte
	binary.LittleEndian.PutUint64(w[:], wager)
	buf = append(buf, w[:]...)
	buf = append(buf, program...)
	buf = append(buf, bump)
	return buf
}

// DeriveGame 根据 (创建者,赌注,程序身份) 推导游戏账户地址.
// bump 从255开始递减搜索,候选哈希若是有效的secp256k1曲线点则被拒绝,
// 保证任何人都不可能持有游戏账户的私钥.
func DeriveGame(prefix, creator string, wager uint64, program string) (*Address, uint8, error) {
	for i := 255; i >= 0; i-- {
		bump := uint8(i)
		if addr, ok := deriveWithBump(prefix, creator, wager, program, bump); ok {
			return addr, bump, nil
		}
	}
	return nil, 0, ErrNoValidBump
}

// ValidateGame 用账户里存储的bump重新推导,校验地址归属.
func ValidateGame(prefix, creator string, wager uint64, program string, bump uint8, addr string) bool {
	derived, ok := deriveWithBump(prefix, creator, wager, program, bump)
	if !ok {
		return false
	}
	return derived.String() == addr
}

func deriveWithBump(prefix, creator string, wager uint64, program string, bump uint8) (*Address, bool) {
	hash := common.Sha2Sum(deriveSeed(prefix, creator, wager, program, bump))
	// 压缩公钥前缀0x02,解析成功说明该哈希可能对应一个私钥
	candidate := make([]byte, 0, 33)
	candidate = append(candidate, 0x02)
	candidate = append(candidate, hash[:]...)
	if crypto.IsPoint(candidate) {
		return nil, false
	}
	return PubKeyToAddress(hash[:]), true
}
