package kvstore

import (
	"fmt"
	"testing"
)

func BenchmarkCompare(b *testing.B) {
	for b.Loop() {
		Compare("Logging:Sinks:2:Level", "Logging:Sinks:10:Level")
	}
}

func BenchmarkDataGet(b *testing.B) {
	d := New()
	for i := range 1000 {
		d.Set(fmt.Sprintf("Section:Sub%d:Key", i), "value")
	}
	b.ResetTimer()

	for b.Loop() {
		d.Get("section:sub500:key")
	}
}

func BenchmarkChildKeys(b *testing.B) {
	d := New()
	for i := range 100 {
		d.Set(fmt.Sprintf("Items:%d", i), "v")
	}
	b.ResetTimer()

	for b.Loop() {
		d.ChildKeys(nil, "Items")
	}
}

func BenchmarkFlatten(b *testing.B) {
	doc := map[string]any{
		"Logging": map[string]any{
			"LogLevel": map[string]any{"Default": "Information"},
			"Sinks":    []any{"console", "file"},
		},
		"Port":  float64(8080),
		"Debug": true,
	}
	b.ResetTimer()

	for b.Loop() {
		Flatten(doc)
	}
}
