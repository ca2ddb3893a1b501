package utils

import (
	"crypto/sha256"
	"encoding/hex"

	"BistroHub/config"
)

// hash 化手机号用于查询索引，加盐避免彩虹表，盐 + ":" + phone

func HashPhone(phone string) string {
	key := config.Cfg.PhoneHashSalt

	sum := sha256.Sum256([]byte(key + ":" + phone))

	return hex.EncodeToString(sum[:])
}

// HashPassword 口令哈希，盐与手机号盐分开配置
func HashPassword(password string) string {
	key := config.Cfg.PasswordHashSalt

	sum := sha256.Sum256([]byte(key + ":" + password))

	return hex.EncodeToString(sum[:])
}
