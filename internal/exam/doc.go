// Package exam decides when to quiz the user, builds multiple-choice
// matching rounds from recently shown words, and scores submissions.
package exam
