package main

import "math"

// Static tax schedules for the 2025 tax year.
// Sources: CRA indexation adjustment for 2025; provincial budget/finance pages.
// Rates are statutory bracket rates only: no basic personal amounts, credits,
// surtaxes (ON), or health premiums are modelled. The tables are compiled-in
// constants for a single tax year.

// TaxYear is the tax year the compiled-in tables describe.
const TaxYear = 2025

var unbounded = math.Inf(1)

// FederalBrackets is the Canadian federal schedule for 2025.
var FederalBrackets = BracketTable{
	{Threshold: 57375, Rate: 0.15},
	{Threshold: 114750, Rate: 0.205},
	{Threshold: 177882, Rate: 0.26},
	{Threshold: 253414, Rate: 0.29},
	{Threshold: unbounded, Rate: 0.33},
}

// ProvincialJurisdictions lists every province and territory with its 2025
// schedule. Registry order is the display order.
var ProvincialJurisdictions = []Jurisdiction{
	{
		Code: "AB", Name: "Alberta",
		Brackets: BracketTable{
			{Threshold: 60000, Rate: 0.08},
			{Threshold: 151234, Rate: 0.10},
			{Threshold: 181481, Rate: 0.12},
			{Threshold: 241974, Rate: 0.13},
			{Threshold: 362961, Rate: 0.14},
			{Threshold: unbounded, Rate: 0.15},
		},
	},
	{
		Code: "BC", Name: "British Columbia",
		Brackets: BracketTable{
			{Threshold: 49279, Rate: 0.0506},
			{Threshold: 98560, Rate: 0.077},
			{Threshold: 113158, Rate: 0.105},
			{Threshold: 137407, Rate: 0.1229},
			{Threshold: 186306, Rate: 0.147},
			{Threshold: 259829, Rate: 0.168},
			{Threshold: unbounded, Rate: 0.205},
		},
	},
	{
		Code: "MB", Name: "Manitoba",
		Brackets: BracketTable{
			{Threshold: 47564, Rate: 0.108},
			{Threshold: 101200, Rate: 0.1275},
			{Threshold: unbounded, Rate: 0.174},
		},
	},
	{
		Code: "NB", Name: "New Brunswick",
		Brackets: BracketTable{
			{Threshold: 51306, Rate: 0.094},
			{Threshold: 102614, Rate: 0.14},
			{Threshold: 190060, Rate: 0.16},
			{Threshold: unbounded, Rate: 0.195},
		},
	},
	{
		Code: "NL", Name: "Newfoundland and Labrador",
		Brackets: BracketTable{
			{Threshold: 44192, Rate: 0.087},
			{Threshold: 88382, Rate: 0.145},
			{Threshold: 157792, Rate: 0.158},
			{Threshold: 220910, Rate: 0.178},
			{Threshold: 282214, Rate: 0.198},
			{Threshold: 564429, Rate: 0.208},
			{Threshold: unbounded, Rate: 0.218},
		},
	},
	{
		Code: "NS", Name: "Nova Scotia",
		Brackets: BracketTable{
			{Threshold: 30507, Rate: 0.0879},
			{Threshold: 61015, Rate: 0.1495},
			{Threshold: 95883, Rate: 0.1667},
			{Threshold: 154650, Rate: 0.175},
			{Threshold: unbounded, Rate: 0.21},
		},
	},
	{
		Code: "NT", Name: "Northwest Territories",
		Brackets: BracketTable{
			{Threshold: 51964, Rate: 0.059},
			{Threshold: 103930, Rate: 0.086},
			{Threshold: 168967, Rate: 0.122},
			{Threshold: unbounded, Rate: 0.1405},
		},
	},
	{
		Code: "NU", Name: "Nunavut",
		Brackets: BracketTable{
			{Threshold: 54707, Rate: 0.04},
			{Threshold: 109413, Rate: 0.07},
			{Threshold: 177881, Rate: 0.09},
			{Threshold: unbounded, Rate: 0.115},
		},
	},
	{
		Code: "ON", Name: "Ontario",
		Brackets: BracketTable{
			{Threshold: 52886, Rate: 0.0505},
			{Threshold: 105775, Rate: 0.0915},
			{Threshold: 150000, Rate: 0.1116},
			{Threshold: 220000, Rate: 0.1216},
			{Threshold: unbounded, Rate: 0.1316},
		},
	},
	{
		Code: "PE", Name: "Prince Edward Island",
		Brackets: BracketTable{
			{Threshold: 33328, Rate: 0.095},
			{Threshold: 64656, Rate: 0.1347},
			{Threshold: 105000, Rate: 0.166},
			{Threshold: 140000, Rate: 0.1762},
			{Threshold: unbounded, Rate: 0.19},
		},
	},
	{
		Code: "QC", Name: "Quebec",
		Brackets: BracketTable{
			{Threshold: 53255, Rate: 0.14},
			{Threshold: 106495, Rate: 0.19},
			{Threshold: 129590, Rate: 0.24},
			{Threshold: unbounded, Rate: 0.2575},
		},
	},
	{
		Code: "SK", Name: "Saskatchewan",
		Brackets: BracketTable{
			{Threshold: 53463, Rate: 0.105},
			{Threshold: 152750, Rate: 0.125},
			{Threshold: unbounded, Rate: 0.145},
		},
	},
	{
		Code: "YT", Name: "Yukon",
		Brackets: BracketTable{
			{Threshold: 57375, Rate: 0.064},
			{Threshold: 114750, Rate: 0.09},
			{Threshold: 177882, Rate: 0.109},
			{Threshold: 500000, Rate: 0.128},
			{Threshold: unbounded, Rate: 0.15},
		},
	},
}

// DefaultRegistry returns the registry of compiled-in provincial schedules.
func DefaultRegistry() *Registry {
	return NewRegistry(ProvincialJurisdictions)
}
