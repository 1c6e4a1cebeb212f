// hashpw: ADMIN_PASSWORD_HASH için bcrypt hash üretir.
//
//	go run ./cmd/hashpw 'parola'
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Kullanım: hashpw <parola>")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Hash üretilemedi: %v", err)
	}
	fmt.Println(string(hash))
}
