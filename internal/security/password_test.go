package security

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

var testParams = Argon2Params{
	Time:    1,
	Memory:  8 * 1024,
	Threads: 1,
	KeyLen:  32,
	SaltLen: 16,
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPasswordWithParams("correct horse battery staple", testParams)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !strings.HasPrefix(string(hash), "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("correct password rejected")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPasswordWithParams("password", testParams)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPasswordWithParams("password", testParams)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if bytes.Equal(first, second) {
		t.Fatal("two hashes of the same password are identical")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	malformed := [][]byte{
		nil,
		[]byte(""),
		[]byte("plaintext"),
		[]byte("$argon2id$v=19$t=1,m=8192,p=1$notbase64!!$xxxx"),
		[]byte("$argon2i$v=19$t=1,m=8192,p=1$c2FsdA$a2V5"),
	}

	for _, hash := range malformed {
		ok, err := VerifyPassword("password", hash)
		if ok {
			t.Fatalf("malformed hash %q verified", hash)
		}
		if !errors.Is(err, ErrMalformedHash) {
			t.Fatalf("malformed hash %q: got %v, want ErrMalformedHash", hash, err)
		}
	}
}
