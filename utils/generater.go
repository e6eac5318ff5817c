package utils

import (
	"crypto/rand"
	"fmt"
)

func GenerateOTP() string {
	// Generate a 4-digit OTP
	var b [2]byte
	rand.Read(b[:])
	n := int(b[0])<<8 | int(b[1])
	return fmt.Sprintf("%04d", n%10000)
}
