package paapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	signingAlgorithm = "AWS4-HMAC-SHA256"
	signingService   = "ProductAdvertisingAPI"

	amzDateFormat   = "20060102T150405Z"
	dateStampFormat = "20060102"
)

// SignRequest computes the AWS Signature Version 4 Authorization header
// for a POST to the given path. The headers map must contain every
// header that will be transmitted and canonicalized, including host and
// x-amz-date; body must be the exact bytes that will be sent. The result
// is deterministic for fixed inputs.
func SignRequest(accessKey, secretKey, region, path string, headers map[string]string, body []byte, t time.Time) string {
	t = t.UTC()

	names := make([]string, 0, len(headers))
	lowered := make(map[string]string, len(headers))
	for name, value := range headers {
		lower := strings.ToLower(name)
		names = append(names, lower)
		lowered[lower] = strings.TrimSpace(value)
	}
	sort.Strings(names)

	var headerLines strings.Builder
	for _, name := range names {
		headerLines.WriteString(name)
		headerLines.WriteByte(':')
		headerLines.WriteString(lowered[name])
		headerLines.WriteByte('\n')
	}
	signedHeaders := strings.Join(names, ";")

	payloadHash := hexSHA256(body)
	canonicalRequest := "POST\n" + path + "\n\n" + headerLines.String() + "\n" + signedHeaders + "\n" + payloadHash

	dateStamp := t.Format(dateStampFormat)
	scope := dateStamp + "/" + region + "/" + signingService + "/aws4_request"
	stringToSign := signingAlgorithm + "\n" + t.Format(amzDateFormat) + "\n" + scope + "\n" + hexSHA256([]byte(canonicalRequest))

	kDate := hmacSHA256([]byte("AWS4"+secretKey), dateStamp)
	kRegion := hmacSHA256(kDate, region)
	kService := hmacSHA256(kRegion, signingService)
	kSigning := hmacSHA256(kService, "aws4_request")
	signature := hex.EncodeToString(hmacSHA256(kSigning, stringToSign))

	return fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		signingAlgorithm, accessKey, scope, signedHeaders, signature)
}

func hexSHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func hmacSHA256(key []byte, data string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
