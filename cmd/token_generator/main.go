package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken signs an HS256 token carrying the caller's email.
func makeToken(secret, email string, ttl time.Duration) string {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	})

	s, err := t.SignedString([]byte(secret))
	if err != nil {
		panic(err)
	}
	return s
}

func main() {
	secret := flag.String("secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 signing secret")
	ttl := flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "secret is required: pass -secret or set AUTH_JWT_SECRET")
		os.Exit(1)
	}

	emails := flag.Args()
	if len(emails) == 0 {
		emails = []string{"alice@example.com", "bob@example.com", "carol@example.com"}
	}

	for _, email := range emails {
		fmt.Printf("%s=%s\n", email, makeToken(*secret, email, *ttl))
	}
}
