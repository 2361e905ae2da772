// Package model defines the records produced by each stage of a phone
// number lookup and consumed by the report writers.
//
// This package contains the following main types:
//   - RawInput: The country code and local number as entered by the user
//   - CanonicalNumber: The normalized number in E.164, international and national formats
//   - LocalMetadata: Offline facts derived from the numbering-plan database
//   - RemoteMetadata: Optional enrichment returned by the remote validation API
//   - IdentityRecord: Optional third-party identity lookup result
//   - LinkPack: The fixed set of search links for manual review
//   - Report: The assembled document
//
// Every stage returns a value of one of these types and none of them is
// modified after it has been produced. Keeping the types in their own
// package lets the phone, enrich, links and report packages share them
// without import cycles.
package model
