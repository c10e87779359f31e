package verifier

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"
)

// certSAN is the subject alternative name the signing certificate must carry.
const certSAN = "echo-api.amazon.com"

// signingCert is a parsed certificate chain: the first PEM block is the
// signing certificate, the rest are intermediates.
type signingCert struct {
	leaf          *x509.Certificate
	intermediates *x509.CertPool
}

func parseChain(pemData []byte) (*signingCert, error) {
	c := &signingCert{intermediates: x509.NewCertPool()}
	for len(pemData) > 0 {
		block, rest := pem.Decode(pemData)
		if block == nil {
			break
		}
		pemData = rest
		if block.Type != "CERTIFICATE" {
			continue
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCertificate, err)
		}
		if c.leaf == nil {
			c.leaf = cert
		} else {
			c.intermediates.AddCert(cert)
		}
	}

	if c.leaf == nil {
		return nil, fmt.Errorf("%w: no certificate in chain", ErrInvalidCertificate)
	}
	return c, nil
}

// verify checks the chain against roots (nil means the system pool), the
// SAN and the validity window at now.
func (c *signingCert) verify(roots *x509.CertPool, now time.Time) error {
	opts := x509.VerifyOptions{
		DNSName:       certSAN,
		Roots:         roots,
		Intermediates: c.intermediates,
		CurrentTime:   now,
	}
	if _, err := c.leaf.Verify(opts); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCertificate, err)
	}
	return nil
}

// signatureAlgorithm names the digest a signature header was computed with.
type signatureAlgorithm int

const (
	sha256Signature signatureAlgorithm = iota
	sha1Signature
)

// checkSignature verifies signature over body with the leaf's public key.
// ECDSA keys are accepted with SHA-256 only.
func (c *signingCert) checkSignature(alg signatureAlgorithm, signature, body []byte) error {
	switch key := c.leaf.PublicKey.(type) {
	case *rsa.PublicKey:
		var err error
		if alg == sha1Signature {
			digest := sha1.Sum(body)
			err = rsa.VerifyPKCS1v15(key, crypto.SHA1, digest[:], signature)
		} else {
			digest := sha256.Sum256(body)
			err = rsa.VerifyPKCS1v15(key, crypto.SHA256, digest[:], signature)
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSignature, err)
		}
		return nil
	case *ecdsa.PublicKey:
		if alg != sha256Signature {
			return fmt.Errorf("%w: ecdsa requires Signature-256", ErrInvalidSignature)
		}
		digest := sha256.Sum256(body)
		if !ecdsa.VerifyASN1(key, digest[:], signature) {
			return ErrInvalidSignature
		}
		return nil
	default:
		return fmt.Errorf("%w: unsupported key type %T", ErrInvalidSignature, key)
	}
}
