// antelope-codec CLI - Antelope chain value codec utility
//
// This CLI demonstrates the antelope-codec library: canonical binary
// encoding of chain values, account name packing, and K1 key operations.
//
// Example usage:
//
//	# Encode a producer authority to its canonical bytes
//	antelope-codec pack eosio 1 PUB_K1_...,1
//
//	# Pack an account name to its 64-bit value and back
//	antelope-codec name eosio
//
//	# Generate a K1 key pair
//	antelope-codec key
//
//	# Sign a 32-byte digest (hex) with a private key
//	antelope-codec sign <PVT_K1_... or WIF> <digest-hex>
//
//	# Recover the signing key from a signature and digest
//	antelope-codec recover <SIG_K1_...> <digest-hex>
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/suffix-labs/antelope-codec/pkg/chain"
	"github.com/suffix-labs/antelope-codec/pkg/crypto"
	"github.com/suffix-labs/antelope-codec/pkg/serializer"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "pack":
		cmdPack()
	case "name":
		cmdName()
	case "key":
		cmdKey()
	case "sign":
		cmdSign()
	case "recover":
		cmdRecover()
	case "version":
		fmt.Println("antelope-codec " + version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`antelope-codec - Antelope chain value codec utility

Usage:
  antelope-codec pack <producer> <threshold> <key,weight>...
                                                Encode a producer authority to hex
  antelope-codec name <account-name | uint64>   Pack/unpack an account name
  antelope-codec key                            Generate a K1 key pair
  antelope-codec sign <private-key> <digest>    Sign a 32-byte digest (hex)
  antelope-codec recover <signature> <digest>   Recover the signing public key
  antelope-codec version                        Print version
  antelope-codec help                           Show this help`)
}

func cmdPack() {
	if len(os.Args) < 5 {
		fatal("pack: usage: pack <producer> <threshold> <public-key,weight>...")
	}
	authority, err := buildProducerAuthority(os.Args[2], os.Args[3], os.Args[4:])
	if err != nil {
		fatal("pack: %v", err)
	}
	fmt.Printf("bytes: %s\n", hex.EncodeToString(serializer.Pack(&authority)))
}

// buildProducerAuthority assembles a producer authority from command-line
// arguments: a producer name, a threshold, and one or more
// "<public-key>,<weight>" pairs.
func buildProducerAuthority(producerArg, thresholdArg string, keyArgs []string) (chain.ProducerAuthority, error) {
	producer, err := chain.NewName(producerArg)
	if err != nil {
		return chain.ProducerAuthority{}, err
	}
	threshold, err := strconv.ParseUint(thresholdArg, 10, 32)
	if err != nil {
		return chain.ProducerAuthority{}, fmt.Errorf("threshold %q: %w", thresholdArg, err)
	}
	keys := make([]chain.KeyWeight, 0, len(keyArgs))
	for _, arg := range keyArgs {
		keyStr, weightStr, ok := strings.Cut(arg, ",")
		if !ok {
			return chain.ProducerAuthority{}, fmt.Errorf("expected <public-key>,<weight>, got %q", arg)
		}
		pub, err := crypto.PublicKeyFromString(keyStr)
		if err != nil {
			return chain.ProducerAuthority{}, err
		}
		weight, err := strconv.ParseUint(weightStr, 10, 16)
		if err != nil {
			return chain.ProducerAuthority{}, fmt.Errorf("weight %q: %w", weightStr, err)
		}
		keys = append(keys, chain.KeyWeight{Key: pub, Weight: uint16(weight)})
	}
	return chain.ProducerAuthority{
		ProducerName: producer,
		Authority: chain.BlockSigningAuthority{
			V0: chain.BlockSigningAuthorityV0{Threshold: uint32(threshold), Keys: keys},
		},
	}, nil
}

func cmdName() {
	if len(os.Args) < 3 {
		fatal("name: missing argument")
	}
	arg := os.Args[2]

	if value, err := strconv.ParseUint(arg, 10, 64); err == nil {
		name := chain.Name(value)
		fmt.Printf("name:  %s\n", name)
		fmt.Printf("bytes: %s\n", hex.EncodeToString(serializer.Pack(&name)))
		return
	}

	name, err := chain.NewName(arg)
	if err != nil {
		fatal("name: %v", err)
	}
	fmt.Printf("value: %d\n", uint64(name))
	fmt.Printf("bytes: %s\n", hex.EncodeToString(serializer.Pack(&name)))
}

func cmdKey() {
	priv, err := crypto.NewPrivateKey()
	if err != nil {
		fatal("key: %v", err)
	}
	pub := priv.PublicKey()
	pubStr, _ := crypto.PublicKeyToString(pub)
	legacyStr, _ := crypto.PublicKeyToLegacyString(pub)

	fmt.Printf("private (WIF):    %s\n", priv.WIF())
	fmt.Printf("private (PVT_K1): %s\n", priv)
	fmt.Printf("public (PUB_K1):  %s\n", pubStr)
	fmt.Printf("public (legacy):  %s\n", legacyStr)
}

func cmdSign() {
	if len(os.Args) < 4 {
		fatal("sign: usage: sign <private-key> <digest-hex>")
	}
	priv, err := crypto.PrivateKeyFromString(os.Args[2])
	if err != nil {
		fatal("sign: %v", err)
	}
	digest, err := chain.NewChecksum256FromHex(os.Args[3])
	if err != nil {
		fatal("sign: %v", err)
	}
	sig := priv.Sign(digest)
	fmt.Printf("signature: %s\n", crypto.SignatureToString(sig))
	fmt.Printf("bytes:     %s\n", hex.EncodeToString(serializer.Pack(&sig)))
}

func cmdRecover() {
	if len(os.Args) < 4 {
		fatal("recover: usage: recover <signature> <digest-hex>")
	}
	sig, err := crypto.SignatureFromString(os.Args[2])
	if err != nil {
		fatal("recover: %v", err)
	}
	digest, err := chain.NewChecksum256FromHex(os.Args[3])
	if err != nil {
		fatal("recover: %v", err)
	}
	pub, err := crypto.RecoverPublicKey(sig, digest)
	if err != nil {
		fatal("recover: %v", err)
	}
	pubStr, _ := crypto.PublicKeyToString(pub)
	fmt.Printf("public key: %s\n", pubStr)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
