// Package document decodes untrusted YAML payloads into typed portal
// entities.
//
// Payloads arrive from arbitrary clients, so decoding is strictly
// plain-data: scalars, sequences, and mappings only. yaml.v3 carries no
// object-construction tags, and any payload using an unknown or extended
// tag fails to decode. Every failure mode collapses to an empty document
// rather than an error, so a malformed or hostile payload renders as
// "no invoices" instead of a 500.
package document

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"invoiceportal/internal/logger"
)

// Parse decodes raw payload text into a plain mapping. It returns an
// empty mapping when the payload is empty, fails to decode, or does not
// have a mapping at the root. Parse never returns an error: malformed
// and unsafe input are handled identically, by yielding no data.
func Parse(raw []byte) map[string]any {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}
	}

	var root any
	if err := yaml.Unmarshal(raw, &root); err != nil {
		log := logger.WithComponent("document")
		log.Debug().
			Err(err).
			Int("payload_bytes", len(raw)).
			Msg("Payload failed to decode, treating as empty document")
		return map[string]any{}
	}

	doc, ok := root.(map[string]any)
	if !ok {
		log := logger.WithComponent("document")
		log.Debug().
			Int("payload_bytes", len(raw)).
			Msg("Payload root is not a mapping, treating as empty document")
		return map[string]any{}
	}
	return doc
}
