// Package trend splits a series into monotonic partial trends and fits linear
// models. Angles are measured in a unit chart where the series spans [0,1] on
// both axes, so they do not depend on the scale of the data.
package trend
