// Package codec converts between messages, big integers and the text forms
// exchanged by the RSA processors.
//
// Messages become integers through an uppercase hexadecimal string, two digits
// per byte. Key components and ciphertexts travel as radix-62 text.
package codec
