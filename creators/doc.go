// Package creators implements the Creators API backend.
//
// Authentication uses the OAuth2 client-credentials grant against a
// Cognito token endpoint selected by API version. Tokens are cached with
// a 30-second safety margin before the server-reported expiry, and
// refreshes are single-flight: concurrent callers share one refresh
// request, and callers arriving after it completes observe the cached
// token.
//
// # Usage
//
//	client, err := creators.NewClient(credentialID, credentialSecret, "2.1", "mytag-20", logger,
//		creators.WithCountry("US"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	resp, err := client.SearchItems(ctx, &amazon.SearchItemsRequest{Keywords: "laptop"})
//
// The client implements amazon.API, so it is interchangeable with the
// paapi backend.
package creators
