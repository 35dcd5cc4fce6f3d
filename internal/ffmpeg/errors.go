package ffmpeg

import "regexp"

// Pre-compiled regexes classifying encoder stderr into named error
// families. Checked in order by Classify; the first match wins.
var (
	reMissingInput = regexp.MustCompile(
		`No such file or directory|could not find codec parameters|Unable to find a suitable output format`)

	reInvalidData = regexp.MustCompile(
		`(?i)invalid data found when processing input`)

	reUnknownEncoder = regexp.MustCompile(
		`(?i)Unknown encoder|Unrecognized option|Encoder not found`)

	reCorruptedMoov = regexp.MustCompile(
		`(?i)moov atom not found|Could not find a valid moov`)

	reConversionFailed = regexp.MustCompile(
		`(?i)Conversion failed!|Error while decoding stream`)

	reCodecParameters = regexp.MustCompile(
		`(?i)could not find codec parameters for stream|Invalid codec parameters`)

	reTrimOutOfRange = regexp.MustCompile(
		`(?i)Trimming .*out of range|Option (trim|setpts) .*out of range`)
)

// Family names one of the stderr pattern classes Classify recognizes.
type Family string

const (
	FamilyMissingInput     Family = "missing_input"
	FamilyInvalidData      Family = "invalid_data"
	FamilyUnknownEncoder   Family = "unknown_encoder"
	FamilyCorruptedMoov    Family = "corrupted_moov"
	FamilyConversionFailed Family = "conversion_failed"
	FamilyCodecParameters  Family = "codec_parameters"
	FamilyTrimOutOfRange   Family = "trim_out_of_range"
	FamilyUnknown          Family = "unknown"
)

// Classify maps stderr output to the first matching error family, checked
// in the order the case arms below are listed.
func Classify(stderr string) Family {
	switch {
	case reMissingInput.MatchString(stderr):
		return FamilyMissingInput
	case reInvalidData.MatchString(stderr):
		return FamilyInvalidData
	case reUnknownEncoder.MatchString(stderr):
		return FamilyUnknownEncoder
	case reCorruptedMoov.MatchString(stderr):
		return FamilyCorruptedMoov
	case reConversionFailed.MatchString(stderr):
		return FamilyConversionFailed
	case reCodecParameters.MatchString(stderr):
		return FamilyCodecParameters
	case reTrimOutOfRange.MatchString(stderr):
		return FamilyTrimOutOfRange
	default:
		return FamilyUnknown
	}
}

// UserMessage maps a Family to the human-readable message surfaced to the
// job status sink.
func UserMessage(f Family) string {
	switch f {
	case FamilyMissingInput:
		return "one or more input files could not be found"
	case FamilyInvalidData:
		return "input file is not a valid media container"
	case FamilyUnknownEncoder:
		return "the configured encoder is unavailable on this host"
	case FamilyCorruptedMoov:
		return "input file has a corrupted or truncated index"
	case FamilyConversionFailed:
		return "encoding failed partway through conversion"
	case FamilyCodecParameters:
		return "could not determine codec parameters for an input stream"
	case FamilyTrimOutOfRange:
		return "a computed trim window fell outside the source clip"
	default:
		return "encoding failed for an unrecognized reason"
	}
}
