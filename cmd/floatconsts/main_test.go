package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/synadia-labs/floatconsts/floatconsts"
)

func runCLI(t *testing.T, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if err := execute(args, &stdout, &stderr); err != nil {
		t.Fatalf("execute(%q): %v\nstderr: %s", args, err, stderr.String())
	}
	return stdout.String(), stderr.String()
}

func TestShow(t *testing.T) {
	for _, args := range [][]string{nil, {"show"}} {
		out, _ := runCLI(t, args...)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 1+len(floatconsts.Entries()) {
			t.Fatalf("args %q: got %d lines:\n%s", args, len(lines), out)
		}
		for _, want := range []string{"MinSubExponent", "-149", "0x007FFFFF", "+Inf", "NaN"} {
			if !strings.Contains(out, want) {
				t.Errorf("args %q: output lacks %q:\n%s", args, want, out)
			}
		}
	}
}

func TestVerify(t *testing.T) {
	out, _ := runCLI(t, "verify")
	if out != "ok\n" {
		t.Fatalf("verify printed %q", out)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, logs := runCLI(t, "--verbose", "verify")
	if !strings.Contains(logs, "partition 32 bits") {
		t.Fatalf("expected debug log, got %q", logs)
	}
	_, logs = runCLI(t, "verify")
	if logs != "" {
		t.Fatalf("unexpected logs without --verbose: %q", logs)
	}
}

func TestEncodeMsgpackHex(t *testing.T) {
	out, _ := runCLI(t, "encode", "--format=msgpack", "--hex")
	b, err := hex.DecodeString(strings.TrimSpace(out))
	if err != nil {
		t.Fatalf("output is not hex: %v", err)
	}
	var got floatconsts.Layout
	if _, err := got.UnmarshalMsg(b); err != nil {
		t.Fatalf("UnmarshalMsg: %v", err)
	}
	if diff := cmp.Diff(floatconsts.Float32(), got, cmpopts.EquateNaNs()); diff != "" {
		t.Fatalf("decoded table mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeCBORFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limits.cbor")
	out, _ := runCLI(t, "encode", "-o", path)
	if out != "" {
		t.Fatalf("unexpected stdout %q", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var got floatconsts.Layout
	if err := got.UnmarshalCBOR(b); err != nil {
		t.Fatalf("UnmarshalCBOR: %v", err)
	}
	if err := got.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := execute([]string{"encode", "--format=json"}, &stdout, &stderr); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestGen(t *testing.T) {
	out, _ := runCLI(t, "gen", "-p", "limits", "--prefix", "F32")
	if !strings.Contains(out, "package limits") || !strings.Contains(out, "F32MinSubExponent") {
		t.Fatalf("unexpected gen output:\n%s", out)
	}

	var stdout, stderr bytes.Buffer
	if err := execute([]string{"gen"}, &stdout, &stderr); err == nil {
		t.Fatalf("gen without --package succeeded")
	}
}
