// Package report reconciles the rebuilt tour table against the previous
// snapshot: it prunes brand-new tours that enrichment could not make
// presentable, cascades the removal through dependent tables, and writes a
// timestamped audit file when anything needs manual follow-up.
package report
