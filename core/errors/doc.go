// Package errors provides standardized error construction patterns for dynstr modules.
//
// Package: errors
// Title: dynstr Error Standards
// Description: This package defines the standard error constructors used by the
//              buffer, bytex, config, and stream modules. It builds on top of the
//              core/error package and guarantees that every error carries its
//              originating module and operation as structured details.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation
//
// Usage:
//   import dserrors "github.com/msto63/dynstr/core/errors"
//
//   if needlePos < 0 {
//       return dserrors.NotFound(dserrors.ModuleBuffer, "remove_first", needle)
//   }
//
// The constructors pick the matching code from the closed taxonomy in
// core/error; callers never assemble codes by hand.
package errors
