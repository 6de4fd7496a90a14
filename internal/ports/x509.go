// Copyright 2026 The Keyforge Authors
//
// https://github.com/lockwell/keyforge
//
// Licensed under the MIT License. See LICENSE file in the project root for
// full license information.

package ports

import "crypto/x509"

// X509Signer is the optional X.509 port used when a host wants to
// delegate certificate signing to a library boundary distinct from the
// in-core pki package (for example, to route signing through a remote
// HSM). Implementations MUST preserve every constraint field of template
// bit-exactly.
type X509Signer interface {
	SignCertificate(template *x509.Certificate, issuer *x509.Certificate, issuerKey any) (*x509.Certificate, error)
}
