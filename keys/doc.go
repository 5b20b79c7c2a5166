// Package keys provides Ed25519 key helpers layered on the strkey encoding.
//
// Stable:
//   - Pure, deterministic primitives: keypair construction from seeds,
//     strkey rendering, and child-seed derivation.
//
// Experimental:
//   - Filesystem-backed key storage and convenience helpers (KeyStore and
//     related functions). These are local-first utilities and are not part
//     of the long-term protocol contract.
package keys
