// Package heartrate estimates heart rate, in beats per minute, from the
// positions of detected peaks in a biosignal such as a ballistocardiogram.
//
// Peak detection itself is delegated to a Segmenter supplied by the caller.
// NewRatePipeline and NewScoredRatePipeline bind a Segmenter to a fixed
// configuration and return a value that turns a raw signal into a heart rate
// (and, for the scored variant, the dispersion of the inter-beat intervals).
//
// Data that cannot yield a trustworthy estimate is reported with the Invalid
// sentinel rather than with an error. Errors are reserved for failures of the
// segmenter and for peaks whose shape does not match the configuration.
package heartrate
