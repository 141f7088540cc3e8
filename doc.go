// Package bcgrate holds the file plumbing shared by the heart-rate tools:
// opening local or gs:// paths, transparent decompression, and delimiter
// detection for peak files. The numeric work lives in the heartrate package.
package bcgrate
