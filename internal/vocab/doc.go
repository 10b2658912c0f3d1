// Package vocab holds the vocabulary word list: parsing of delimited
// vocabulary files and the shuffled word queue the trainer draws from.
package vocab
