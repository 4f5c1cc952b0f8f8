/*
Package gesture holds the pure math of a swipe: the two-sample velocity
estimate, the offset-to-rotation and offset-to-feedback mappings, the
commit/abort policy and the snap-back easing curve.

Nothing here keeps time or renders; callers feed samples and read values.
*/
package gesture
