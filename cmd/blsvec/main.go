// blsvec generates test vectors for the basic signature in G2 over BLS12-381.
//
// Given a 32-byte seed and a message it prints the derived secret scalar, the
// public key, the message point and the signature, either as labeled hex
// lines or as a JSON object.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	bls "github.com/halcyonlabs/bls"
	"github.com/halcyonlabs/bls/vectors"
)

var (
	seedFlag = &cli.StringFlag{
		Name:     "seed",
		Usage:    "secret seed, at least 32 bytes (used as raw ASCII)",
		Required: true,
	}
	msgFlag = &cli.StringFlag{
		Name:     "msg",
		Usage:    "message to sign (used as raw ASCII)",
		Required: true,
	}
	ciphersuiteFlag = &cli.IntFlag{
		Name:  "ciphersuite",
		Usage: "ciphersuite tag byte prepended to the message",
		Value: bls.CiphersuiteBasicG2,
	}
	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "emit the vector as a JSON object instead of labeled lines",
	}
	paramsFlag = &cli.BoolFlag{
		Name:  "params",
		Usage: "print the group order and generators before the vector",
	}
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "blsvec",
		Usage: "generate BLS12-381 basic signature in G2 test vectors",
		Flags: []cli.Flag{seedFlag, msgFlag, ciphersuiteFlag, jsonFlag, paramsFlag},
		Action: func(c *cli.Context) error {
			v, err := vectors.Generate(
				[]byte(c.String(seedFlag.Name)),
				[]byte(c.String(msgFlag.Name)),
				c.Int(ciphersuiteFlag.Name),
			)
			if err != nil {
				return err
			}

			if c.Bool(jsonFlag.Name) {
				return vectors.EncodeJSON(os.Stdout, v)
			}

			p := vectors.Printer{W: os.Stdout}
			if c.Bool(paramsFlag.Name) {
				if err := p.PrintParams(); err != nil {
					return err
				}
			}
			return p.Print(v)
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("generating vector")
	}
}
