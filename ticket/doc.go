// Package ticket extracts and normalizes ticket identifiers.
//
// A ticket is a full identifier including its prefix, e.g. "SE-1234" or
// "#123". A bare ticket number is just the numeric portion, e.g. "1234";
// bare numbers can be expanded to full tickets using the configured
// workflow.ticket.prefix.
package ticket
