package options

import (
	"testing"
	"time"
)

func TestGetDateDefaultsToToday(t *testing.T) {
	o := &OnOptions{}
	got, err := o.GetDate()
	if err != nil {
		t.Fatalf("get date: %v", err)
	}
	if want := time.Now().Format(layoutStored); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGetDateFullForm(t *testing.T) {
	o := &OnOptions{OnString: "2026-2-8"}
	got, err := o.GetDate()
	if err != nil {
		t.Fatalf("get date: %v", err)
	}
	if got != "2026-02-08" {
		t.Errorf("got %q, want 2026-02-08", got)
	}
}

func TestGetDateShortFormIsFuture(t *testing.T) {
	o := &OnOptions{OnString: "1/15"}
	on, err := o.GetOn()
	if err != nil {
		t.Fatalf("get on: %v", err)
	}
	if on == nil {
		t.Fatal("expected a date")
	}
	if on.Before(time.Now()) {
		t.Errorf("short form resolved to the past: %v", on)
	}
	if on.Month() != time.January || on.Day() != 15 {
		t.Errorf("got %v, want January 15", on)
	}
}

func TestGetDateRejectsGarbage(t *testing.T) {
	o := &OnOptions{OnString: "soon"}
	if _, err := o.GetDate(); err == nil {
		t.Error("expected an error for an unparsable date")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three", 8)
	if got != "one two\nthree" {
		t.Errorf("got %q", got)
	}
}
