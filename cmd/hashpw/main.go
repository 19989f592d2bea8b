// hashpw prints the bcrypt hash of a password, for use as
// ADMIN_PASSWORD_HASH in the environment.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/devportfolio/portfolio-backend/internal/auth/password"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: hashpw <password>")
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	fmt.Println(hash)
}
