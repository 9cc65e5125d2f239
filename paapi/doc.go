// Package paapi implements the legacy Product Advertising API v5 backend.
//
// Requests are signed per AWS Signature Version 4 with service name
// ProductAdvertisingAPI and POSTed to webservices.amazon.<domain>. The
// client implements amazon.API, so it is interchangeable with the
// creators backend.
//
// # Usage
//
//	client, err := paapi.NewClient(accessKey, secretKey, "mytag-20", logger,
//		paapi.WithCountry("DE"),
//		paapi.WithThrottle(2*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := client.GetItems(ctx, &amazon.GetItemsRequest{
//		ItemIDs: []string{"B0DLFMFBJW"},
//	})
//
// GetItems accepts more than ten identifiers; the client fans the call
// out in chunks of ten and concatenates the results in chunk order.
package paapi
