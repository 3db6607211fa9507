// Package service orchestrates the training flow: question generation and
// caching, answer grading, transactional progression updates, and stats
// aggregation. It owns no business rules itself; those live in the domain
// and generation packages.
package service
