// Package writers turns runner reports into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (text lines, JSON/JSONL, YAML).
//   - The runner stays orchestration-only and hands reports over a channel.
//   - JSON, JSONL and YAML share one wire shape (Wire) so consumers can switch
//     formats without remapping fields.
package writers
