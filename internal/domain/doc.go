// Package domain contains the core catalog entities (songs, genres and
// countries), pagination value objects and domain validation, independent of
// any specific infrastructure or delivery mechanism.
package domain
