package main

import (
	"github.com/iksnae/ivr-call/cmd"

	_ "golang.org/x/crypto/x509roots/fallback" // CA roots for minimal containers
)

func main() {
	cmd.Execute()
}
