package diag_test

import (
	"testing"

	"llbc/internal/diag"
	"llbc/internal/source"
)

func TestBagLimit(t *testing.T) {
	b := diag.NewBag(2)
	if !b.Add(diag.NewError(diag.TransDiscrNoSwitch, source.Span{}, "a")) {
		t.Fatalf("first add rejected")
	}
	if !b.Add(diag.NewError(diag.TransDiscrNoSwitch, source.Span{}, "b")) {
		t.Fatalf("second add rejected")
	}
	if b.Add(diag.NewError(diag.TransDiscrNoSwitch, source.Span{}, "c")) {
		t.Errorf("add past the limit must be rejected")
	}
	if b.Len() != 2 {
		t.Errorf("len = %d", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := diag.NewBag(10)
	b.Add(diag.New(diag.SevInfo, diag.TransInfo, source.Span{}, "fyi"))
	b.Add(diag.New(diag.SevWarning, diag.UnknownCode, source.Span{}, "hm"))
	if b.HasErrors() {
		t.Fatalf("infos and warnings must not count as errors")
	}
	b.Add(diag.NewError(diag.TransDiscrNotEnum, source.Span{}, "bad"))
	if !b.HasErrors() {
		t.Errorf("error-severity diagnostic not seen")
	}
}

func TestWithNote(t *testing.T) {
	d := diag.NewError(diag.TransDiscrUnknownValue, source.Span{File: 1}, "bad value")
	d2 := d.WithNote(source.Span{File: 2}, "declared here")
	if len(d.Notes) != 0 {
		t.Errorf("WithNote must not mutate the receiver")
	}
	if len(d2.Notes) != 1 || d2.Notes[0].Msg != "declared here" {
		t.Errorf("note not attached: %+v", d2.Notes)
	}
}

func TestCodeString(t *testing.T) {
	if got := diag.TransDiscrNoSwitch.String(); got != "L3001" {
		t.Errorf("code prints %q", got)
	}
	if got := diag.SevError.String(); got != "error" {
		t.Errorf("severity prints %q", got)
	}
}
