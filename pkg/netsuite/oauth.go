package netsuite

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// oauthSigner signs requests with OAuth1 token-based authentication,
// HMAC-SHA256, the only scheme the SuiteTalk REST surface accepts.
type oauthSigner struct {
	cfg   Config
	nonce func() string
	now   func() time.Time
}

func newOauthSigner(cfg Config) *oauthSigner {
	return &oauthSigner{
		cfg: cfg,
		nonce: func() string {
			b := make([]byte, 16)
			_, _ = rand.Read(b)

			return hex.EncodeToString(b)
		},
		now: time.Now,
	}
}

// Header builds the Authorization header value for one request.
func (s *oauthSigner) Header(method string, u *url.URL) string {
	params := map[string]string{
		"oauth_consumer_key":     s.cfg.ConsumerKey,
		"oauth_token":            s.cfg.TokenKey,
		"oauth_signature_method": "HMAC-SHA256",
		"oauth_timestamp":        strconv.FormatInt(s.now().Unix(), 10),
		"oauth_nonce":            s.nonce(),
		"oauth_version":          "1.0",
	}

	params["oauth_signature"] = s.signature(method, u, params)

	pairs := make([]string, 0, len(params)+1)
	pairs = append(pairs, fmt.Sprintf("realm=%q", s.cfg.Account))

	for _, key := range sortedKeys(params) {
		pairs = append(pairs, fmt.Sprintf("%s=%q", key, encode(params[key])))
	}

	return "OAuth " + strings.Join(pairs, ", ")
}

func (s *oauthSigner) signature(method string, u *url.URL, oauthParams map[string]string) string {
	all := map[string]string{}
	for k, v := range oauthParams {
		all[k] = v
	}

	for k, vals := range u.Query() {
		if len(vals) > 0 {
			all[k] = vals[0]
		}
	}

	var pairs []string
	for _, key := range sortedKeys(all) {
		pairs = append(pairs, encode(key)+"="+encode(all[key]))
	}

	baseURL := u.Scheme + "://" + u.Host + u.Path
	base := strings.Join([]string{
		strings.ToUpper(method),
		encode(baseURL),
		encode(strings.Join(pairs, "&")),
	}, "&")

	key := encode(s.cfg.ConsumerSecret) + "&" + encode(s.cfg.TokenSecret)

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(base))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// encode applies RFC 5849 percent-encoding, which is stricter than
// url.QueryEscape about spaces and tildes.
func encode(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	escaped = strings.ReplaceAll(escaped, "%7E", "~")

	return escaped
}
