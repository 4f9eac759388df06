// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mapping converts raw dataset cells into typed values.

All functions are pure and total: every input string produces a result,
with "unknown" expressed as nil (ToBool, ToInt) or "" (Recommendation,
Topic) rather than an error.

# Mappers

  - ToBool: "1"/"0" → true/false, anything else → nil (unknown)
  - ToInt: integer parse, nil on failure
  - FormatDate: DD.MM.YYYY → YYYY-MM-DD, no calendar validation
  - Recommendation: party recommendation code → canonical label
  - Topic: top-level category code → policy-area label

# Tri-state booleans

The dataset encodes vote outcomes as "1"/"0" with empty cells for
pending or unknown results. ToBool therefore returns *bool, and nil
means "unknown" - callers must not collapse it to false.

# Known limitation

FormatDate reassembles the date textually. "99.99.9999" becomes
"9999-99-99"; garbage in, garbage out.
*/
package mapping
