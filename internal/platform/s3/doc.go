// Package s3 provides a client for S3-compatible object storage.
//
// It handles bucket creation and archive upload for off-site certificate
// store backups. Credentials and endpoint come from the environment, so
// any S3-compatible provider works.
package s3
