// Copyright (c) 2024 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

// SemVer is the version of colordog.
const SemVer = "0.1.0"
