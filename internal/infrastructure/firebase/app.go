package firebase

import (
	"google.golang.org/api/option"
)

// CredentialOptions resolves Firebase credentials in order of preference:
// inline JSON from the environment, then a key file, then application
// default credentials (empty slice).
func CredentialOptions(serviceAccountJSON, serviceAccountPath string) []option.ClientOption {
	if serviceAccountJSON != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(serviceAccountJSON))}
	}
	if serviceAccountPath != "" {
		return []option.ClientOption{option.WithCredentialsFile(serviceAccountPath)}
	}
	return nil
}
