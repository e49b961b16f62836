package inventory

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// testPKI is a throwaway certificate authority with a server and a client leaf.
type testPKI struct {
	caCert    *x509.Certificate
	caKey     *ecdsa.PrivateKey
	caPEM     []byte
	caPool    *x509.CertPool
	server    tls.Certificate
	clientPEM []byte
	clientKey []byte
}

var serial int64

func newTestPKI(t *testing.T) *testPKI {
	t.Helper()

	caKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	caTemplate := &x509.Certificate{
		SerialNumber:          nextSerial(),
		Subject:               pkix.Name{CommonName: "test-root"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}
	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)
	caCert, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	p := &testPKI{
		caCert: caCert,
		caKey:  caKey,
		caPEM:  pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: caDER}),
		caPool: x509.NewCertPool(),
	}
	p.caPool.AddCert(caCert)

	serverCertPEM, serverKeyPEM := p.issue(t, "gateway.local", x509.ExtKeyUsageServerAuth)
	p.server, err = tls.X509KeyPair(serverCertPEM, serverKeyPEM)
	require.NoError(t, err)

	p.clientPEM, p.clientKey = p.issue(t, "replenishment-client", x509.ExtKeyUsageClientAuth)
	return p
}

func nextSerial() *big.Int {
	serial++
	return big.NewInt(serial)
}

func (p *testPKI) issue(t *testing.T, cn string, usage x509.ExtKeyUsage) (certPEM, keyPEM []byte) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	template := &x509.Certificate{
		SerialNumber: nextSerial(),
		Subject:      pkix.Name{CommonName: cn},
		DNSNames:     []string{cn, "localhost"},
		IPAddresses:  []net.IP{net.ParseIP("127.0.0.1")},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{usage},
	}
	der, err := x509.CreateCertificate(rand.Reader, template, p.caCert, &key.PublicKey, p.caKey)
	require.NoError(t, err)
	keyDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}),
		pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: keyDER})
}

// writeClientFiles writes the CA and client credential to disk and returns a Config pointing at them.
func (p *testPKI) writeClientFiles(t *testing.T, baseURL string) Config {
	t.Helper()

	dir := t.TempDir()
	cfg := Config{
		BaseURL:        baseURL,
		CertFile:       filepath.Join(dir, "client.crt"),
		KeyFile:        filepath.Join(dir, "client.key"),
		CAFile:         filepath.Join(dir, "ca.crt"),
		TimeoutSeconds: 5,
	}
	require.NoError(t, os.WriteFile(cfg.CertFile, p.clientPEM, 0o600))
	require.NoError(t, os.WriteFile(cfg.KeyFile, p.clientKey, 0o600))
	require.NoError(t, os.WriteFile(cfg.CAFile, p.caPEM, 0o600))
	return cfg
}
