// Package units provides the unit table used to recognise measurements in
// ingredient lines.
//
// The table ships embedded (data/units.yaml) and can be extended with a user
// YAML file of the same shape. Table implements driven.UnitLookup.
//
// The package also carries the preparation word lists (data/prep.yaml) used
// to pull phrases such as "finely chopped" out of annotation text.
package units
