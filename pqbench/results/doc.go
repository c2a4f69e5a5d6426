// Package results persists experiment output: one summary CSV row per swept
// configuration, and an optional lz4-compressed JSONL archive of every raw
// per-repetition sample for downstream statistical tooling.
package results
