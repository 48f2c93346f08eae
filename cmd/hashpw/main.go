// Command hashpw prints a bcrypt hash for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	passwordservice "github.com/mikiasgoitom/Folio/internal/infrastructure/password_service"
)

func main() {
	var password string
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logrus.Fatalf("read password: %v", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		logrus.Fatal("usage: hashpw <password> (or pipe it on stdin)")
	}

	hash, err := passwordservice.NewHasher().HashPassword(password)
	if err != nil {
		logrus.Fatalf("hash password: %v", err)
	}
	fmt.Println(hash)
}
