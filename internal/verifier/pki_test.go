package verifier

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/base64"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testPKI is a throwaway CA with one signing certificate under it.
type testPKI struct {
	roots   *x509.CertPool
	chain   []byte
	rsaKey  *rsa.PrivateKey
	ecKey   *ecdsa.PrivateKey
	ecChain []byte
}

type leafOptions struct {
	dnsName   string
	notBefore time.Time
	notAfter  time.Time
}

func newTestPKI(t *testing.T, now time.Time) *testPKI {
	t.Helper()
	return newTestPKIWithLeaf(t, leafOptions{
		dnsName:   certSAN,
		notBefore: now.Add(-time.Hour),
		notAfter:  now.Add(time.Hour),
	})
}

func newTestPKIWithLeaf(t *testing.T, opts leafOptions) *testPKI {
	t.Helper()

	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	caTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "test root"},
		NotBefore:             opts.notBefore.Add(-24 * time.Hour),
		NotAfter:              opts.notAfter.Add(24 * time.Hour),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	roots := x509.NewCertPool()
	roots.AddCert(caCert)

	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	ecKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	issue := func(serial int64, pub any) []byte {
		leaf := &x509.Certificate{
			SerialNumber: big.NewInt(serial),
			Subject:      pkix.Name{CommonName: opts.dnsName},
			DNSNames:     []string{opts.dnsName},
			NotBefore:    opts.notBefore,
			NotAfter:     opts.notAfter,
			KeyUsage:     x509.KeyUsageDigitalSignature,
			ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		}
		der, err := x509.CreateCertificate(rand.Reader, leaf, caCert, pub, caKey)
		require.NoError(t, err)

		chain := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
		return append(chain, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caDER})...)
	}

	return &testPKI{
		roots:   roots,
		chain:   issue(2, &rsaKey.PublicKey),
		rsaKey:  rsaKey,
		ecKey:   ecKey,
		ecChain: issue(3, &ecKey.PublicKey),
	}
}

func (p *testPKI) signSHA256(t *testing.T, body []byte) string {
	t.Helper()
	digest := sha256.Sum256(body)
	sig, err := rsa.SignPKCS1v15(rand.Reader, p.rsaKey, crypto.SHA256, digest[:])
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(sig)
}

func (p *testPKI) signSHA1(t *testing.T, body []byte) string {
	t.Helper()
	digest := sha1.Sum(body)
	sig, err := rsa.SignPKCS1v15(rand.Reader, p.rsaKey, crypto.SHA1, digest[:])
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(sig)
}

func (p *testPKI) signECDSA(t *testing.T, body []byte) string {
	t.Helper()
	digest := sha256.Sum256(body)
	sig, err := ecdsa.SignASN1(rand.Reader, p.ecKey, digest[:])
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(sig)
}
