package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenerateTrackingCode gera 8 bytes aleatórios criptográficos e retorna
// 16 caracteres hexadecimais maiúsculos, únicos por construção
func GenerateTrackingCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// HashIPAddress aplica um hash de mão única ao IP do visitante. O endereço
// bruto nunca é persistido; o hash preserva a contagem de visitantes únicos.
func HashIPAddress(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
