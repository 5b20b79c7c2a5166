package keys

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/future-tense/stellar-strkey/strkey"
)

// KeyStore is a simple local-first key management system.
//
// EXPERIMENTAL: this filesystem-backed storage surface is not part of the
// stable API and may change in MINOR releases.
//
// Features:
// - Supports Ed25519 keys only
// - Stores seeds on the local filesystem as S... strkeys
// - Generates deterministic child keys by name
//
// This package is designed to be straightforward and explicit.
type KeyStore struct {
	Directory string
}

type KeyEntry struct {
	Identifier string
	Children   []string
}

func GetDefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".strkey", "keys"), nil
}

func CreateKeyStore(directory string) (*KeyStore, error) {
	if directory == "" {
		var err error
		directory, err = GetDefaultDirectory()
		if err != nil {
			return nil, err
		}
	}
	return &KeyStore{Directory: directory}, nil
}

func (ks *KeyStore) getRootKeyFilePath(identifier string) string {
	return filepath.Join(ks.Directory, identifier, "root.key")
}

func (ks *KeyStore) getChildKeyFilePath(identifier, child string) string {
	return filepath.Join(ks.Directory, identifier, "children", child+".key")
}

func CheckKeyName(identifier string) error {
	if identifier == "" {
		return errors.New("identifier cannot be empty")
	}
	for _, char := range identifier {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			continue
		}
		return fmt.Errorf("invalid character %q in identifier", char)
	}
	return nil
}

func CheckChildName(name string) error {
	if name == "" {
		return errors.New("child name cannot be empty")
	}
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			continue
		}
		return fmt.Errorf("invalid character %q in child name", char)
	}
	return nil
}

// ParseSeed accepts either an S... seed strkey or 64 hex characters
// (with optional 0x prefix) and returns the raw 32-byte seed.
func ParseSeed(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strkey.IsValidEd25519SecretSeed(s) {
		return strkey.DecodeEd25519SecretSeed(s)
	}
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("seed is neither a seed strkey nor hex: %w", err)
	}
	if len(data) != ed25519.SeedSize {
		return nil, fmt.Errorf("expected seed length of %d bytes, got %d", ed25519.SeedSize, len(data))
	}
	return data, nil
}

func (ks *KeyStore) saveSeedToFile(filePath string, seed []byte, overwrite bool) error {
	encoded, err := strkey.EncodeEd25519SecretSeed(seed)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0o700); err != nil {
		return err
	}
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(filePath, flags, 0o600)
	if err != nil {
		return err
	}
	defer file.Close()
	if _, err := file.WriteString(encoded + "\n"); err != nil {
		return err
	}
	return file.Close()
}

func (ks *KeyStore) loadSeedFromFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return ParseSeed(strings.TrimSpace(string(data)))
}

// InitializeRootKey stores seed under identifier and returns the G...
// address of the stored key.
func (ks *KeyStore) InitializeRootKey(identifier string, seed []byte, overwrite bool) (address string, filePath string, err error) {
	if err := CheckKeyName(identifier); err != nil {
		return "", "", err
	}
	if len(seed) != ed25519.SeedSize {
		return "", "", fmt.Errorf("expected seed length of %d bytes", ed25519.SeedSize)
	}
	filePath = ks.getRootKeyFilePath(identifier)
	if err := ks.saveSeedToFile(filePath, seed, overwrite); err != nil {
		return "", "", err
	}
	address, err = addressForSeed(seed)
	if err != nil {
		return "", "", err
	}
	return address, filePath, nil
}

// DeriveChildKey derives and stores the named child of an existing root key,
// returning the child's G... address.
func (ks *KeyStore) DeriveChildKey(from, name string, overwrite bool) (address string, filePath string, err error) {
	if err := CheckKeyName(from); err != nil {
		return "", "", err
	}
	if err := CheckChildName(name); err != nil {
		return "", "", err
	}
	rootSeed, err := ks.loadSeedFromFile(ks.getRootKeyFilePath(from))
	if err != nil {
		return "", "", err
	}
	childSeed, err := DeriveChildSeed(rootSeed, name)
	if err != nil {
		return "", "", err
	}
	filePath = ks.getChildKeyFilePath(from, name)
	if err := ks.saveSeedToFile(filePath, childSeed, overwrite); err != nil {
		return "", "", err
	}
	address, err = addressForSeed(childSeed)
	if err != nil {
		return "", "", err
	}
	return address, filePath, nil
}

// ExportKey returns the G... address for a stored root or child key.
func (ks *KeyStore) ExportKey(identifier string, child string) (string, error) {
	if err := CheckKeyName(identifier); err != nil {
		return "", err
	}
	var seed []byte
	var err error
	if child == "" {
		seed, err = ks.loadSeedFromFile(ks.getRootKeyFilePath(identifier))
	} else {
		if err := CheckChildName(child); err != nil {
			return "", err
		}
		seed, err = ks.loadSeedFromFile(ks.getChildKeyFilePath(identifier, child))
	}
	if err != nil {
		return "", err
	}
	return addressForSeed(seed)
}

// LoadSeed resolves a signing seed from the first populated source: an
// explicit seed string, a key file path, or a stored key name.
func (ks *KeyStore) LoadSeed(seedString, signerName, signerChild, keyFile string) ([]byte, error) {
	if seedString != "" {
		return ParseSeed(seedString)
	}
	if keyFile != "" {
		return ks.loadSeedFromFile(keyFile)
	}
	if signerName != "" {
		if err := CheckKeyName(signerName); err != nil {
			return nil, err
		}
		if signerChild == "" {
			return ks.loadSeedFromFile(ks.getRootKeyFilePath(signerName))
		}
		if err := CheckChildName(signerChild); err != nil {
			return nil, err
		}
		return ks.loadSeedFromFile(ks.getChildKeyFilePath(signerName, signerChild))
	}
	return nil, errors.New("no signer provided")
}

func (ks *KeyStore) ListKeys() ([]KeyEntry, error) {
	entries, err := os.ReadDir(ks.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var identifiers []string
	for _, entry := range entries {
		if entry.IsDir() {
			identifiers = append(identifiers, entry.Name())
		}
	}
	sort.Strings(identifiers)

	var result []KeyEntry
	for _, identifier := range identifiers {
		childrenDir := filepath.Join(ks.Directory, identifier, "children")
		childEntries, cerr := os.ReadDir(childrenDir)
		var children []string
		if cerr == nil {
			for _, childEntry := range childEntries {
				if childEntry.IsDir() {
					continue
				}
				if strings.HasSuffix(childEntry.Name(), ".key") {
					children = append(children, strings.TrimSuffix(childEntry.Name(), ".key"))
				}
			}
			sort.Strings(children)
		}
		result = append(result, KeyEntry{Identifier: identifier, Children: children})
	}
	return result, nil
}

func addressForSeed(seed []byte) (string, error) {
	kp, err := FromRawSeed(seed)
	if err != nil {
		return "", err
	}
	return kp.Address()
}
