package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"testing"
)

func testKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

func testPayload(t *testing.T, key *rsa.PrivateKey) ([]string, []byte) {
	t.Helper()
	info := []string{
		"0c9f1bd1-23a1-4f65-8a9c-2c3e9f0a1b2d",
		"1",
		"2608-1",
		"00001234",
		"29.08.2026",
		"28.09.2026",
		AlgorithmVersion,
		"1-2-3",
	}
	message, err := CanonicalMessage(info)
	if err != nil {
		t.Fatalf("canonical message: %v", err)
	}
	signature, err := Sign(message, key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	info = append(info, signature)
	raw, err := json.Marshal(info)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return info, raw
}

func TestCanonicalMessageFieldSelection(t *testing.T) {
	info := []string{"id", "code", "series", "number", "start", "end", "V01", "1-2"}
	message, err := CanonicalMessage(info)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// type code, algorithm version and vehicle types stay outside the message
	want := "id_series_number_start_end"
	if message != want {
		t.Errorf("message = %q, want %q", message, want)
	}
}

func TestCanonicalMessageTooShort(t *testing.T) {
	if _, err := CanonicalMessage([]string{"a", "b", "c"}); err == nil {
		t.Error("expected error for short tuple")
	}
}

func TestVerifyRoundTrip(t *testing.T) {
	key := testKey(t)
	_, raw := testPayload(t, key)

	ok, err := Verify(raw, false, &key.PublicKey)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("valid payload did not verify")
	}
}

func TestVerifyCompressedRoundTrip(t *testing.T) {
	key := testKey(t)
	_, raw := testPayload(t, key)

	ok, err := Verify(CompressZstd(raw), true, &key.PublicKey)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Error("compressed payload did not verify")
	}
}

func TestVerifyTamperedField(t *testing.T) {
	key := testKey(t)
	info, _ := testPayload(t, key)

	info[3] = "00009999" // forge the ticket number
	raw, _ := json.Marshal(info)

	ok, err := Verify(raw, false, &key.PublicKey)
	if err != nil {
		t.Fatalf("tampered field must not be a structural error: %v", err)
	}
	if ok {
		t.Error("tampered payload verified")
	}
}

func TestVerifyWrongKey(t *testing.T) {
	key := testKey(t)
	other := testKey(t)
	_, raw := testPayload(t, key)

	ok, err := Verify(raw, false, &other.PublicKey)
	if err != nil {
		t.Fatalf("wrong key must not be a structural error: %v", err)
	}
	if ok {
		t.Error("payload verified with the wrong key")
	}
}

func TestVerifyStructuralErrors(t *testing.T) {
	key := testKey(t)

	cases := map[string][]byte{
		"not json":      []byte("not a json payload"),
		"short tuple":   []byte(`["a","b","c"]`),
		"bad signature": []byte(`["a","b","c","d","e","f","g","%%not-base64%%"]`),
	}
	for name, payload := range cases {
		ok, err := Verify(payload, false, &key.PublicKey)
		if err == nil {
			t.Errorf("%s: expected structural error", name)
		}
		if ok {
			t.Errorf("%s: payload verified", name)
		}
	}
}

func TestVerifyCompressedGarbage(t *testing.T) {
	key := testKey(t)
	if ok, err := Verify([]byte("garbage"), true, &key.PublicKey); err == nil || ok {
		t.Error("expected error for undecompressable payload")
	}
}

func TestKeyFilesRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateKeys(dir, "private.pem", "public.pem"); err != nil {
		t.Fatalf("generate keys: %v", err)
	}

	private, err := LoadPrivateKey(dir + "/private.pem")
	if err != nil {
		t.Fatalf("load private key: %v", err)
	}
	public, err := LoadPublicKey(dir + "/public.pem")
	if err != nil {
		t.Fatalf("load public key: %v", err)
	}

	_, raw := testPayload(t, private)
	ok, err := Verify(raw, false, public)
	if err != nil || !ok {
		t.Errorf("file-based key pair failed round trip: ok=%v err=%v", ok, err)
	}
}
