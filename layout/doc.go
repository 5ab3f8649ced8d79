// SPDX-License-Identifier: MIT

// Package layout exposes the byte representation of yama values.
//
// Every vector, quaternion and matrix is a tightly packed run of scalars
// (matrices column by column), so its bytes are exactly what a graphics
// API expects in a vertex or uniform buffer. Bytes and SliceBytes return
// that memory without copying; FromBytes copies it back into a value.
//
// Digest and SliceDigest hash the same bytes with xxhash. Two values with
// equal digests have, with overwhelming probability, identical storage,
// which makes them convenient for checking that two construction paths
// (Columns versus Rows, say) agree bit for bit or for fingerprinting
// buffers in logs.
//
// The byte order is the host's. Nothing here converts endianness.
package layout
