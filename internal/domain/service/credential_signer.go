// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

// CredentialSigner constructs and verifies the tamper-evident verified-email
// credential held by the client as a cookie. The credential is self-contained
// (email + expiry + MAC); no server-side session storage is involved.
//
// The signer is a single-capability component so alternate backends
// (different MAC, different encoding) can be swapped without touching callers.
type CredentialSigner interface {
	// Sign produces a credential string asserting the email is verified,
	// valid for the signer's configured lifetime.
	Sign(email string) (string, error)

	// Verify decodes and checks a credential. It returns the embedded
	// email and true only when the signature verifies and the expiry is in
	// the future. Every failure mode (malformed input, decode failure,
	// missing field, expired, bad signature) yields ("", false), never an
	// error: callers treat all of them as "not authenticated".
	Verify(credential string) (email string, ok bool)
}
