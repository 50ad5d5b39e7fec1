// Package kernel contains shared domain primitives used across aggregates.
// It currently provides the UUID value object that identifies accounts and
// verification codes and seeds the parcel tracking identifier.
package kernel
