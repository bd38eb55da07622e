// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command hashgen prints a password hash suitable for
// APP_PRINCIPAL_HASH. The secret is read from -secret or, when the flag
// is absent, from the first line of stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/internal/crypto"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/models"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log := logger.NewConsoleLogger("go-scaffold-hashgen")

	algorithm := flag.String("algorithm", string(models.HashBcrypt), "bcrypt, bcrypt_truncated72 or sha256")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	secret := flag.String("secret", "", "secret to hash (read from stdin when empty)")
	flag.Parse()

	alg, ok := models.ParseHashAlgorithm(*algorithm)
	if !ok {
		log.Fatal().Str("algorithm", *algorithm).Msg("unknown hash algorithm")
	}

	if *secret == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			log.Fatal().Err(err).Msg("error reading secret from stdin")
		}
		*secret = strings.TrimRight(line, "\r\n")
	}
	if *secret == "" {
		log.Fatal().Msg("empty secret")
	}

	hasher, err := crypto.NewPasswordHasher(alg, *cost)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hasher")
	}

	hash, err := hasher.Hash(*secret)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing secret")
	}

	fmt.Println(hash)
}
