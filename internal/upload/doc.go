// Package upload stores journal entry attachments.
//
// Base64 payloads are decoded into uniquely named files under the
// journal_images directory inside the data dir. The relative paths it
// returns are persisted verbatim on entries; Remove refuses any path
// that does not resolve back under journal_images, since the data dir
// also holds the database and passcode state.
package upload
