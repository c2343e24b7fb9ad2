package lex

import (
	"reflect"
	"testing"
)

func TestRunes(t *testing.T) {
	got := Runes("2 + 3*4")
	want := []string{"2", "+", "3", "*", "4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Runes = %v, want %v", got, want)
	}

	if Runes("") != nil {
		t.Error("Runes of an empty sentence should be nil")
	}
}

func TestFields(t *testing.T) {
	got := Fields("the  cat \t sat")
	want := []string{"the", "cat", "sat"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}
