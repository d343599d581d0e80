// Package tests provides tests for common RSpace client types.
/*
 * Copyright (c) 2026, ResearchSpace. All rights reserved.
 */
package tests

import (
	"github.com/rspace-os/rspace-client-go/cmn"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Grid placement", func() {
	DescribeTable("start index",
		func(col, row, totalCols, totalRows int, fs cmn.FillingStrategy, expected int) {
			idx, err := cmn.StartIndex(col, row, totalCols, totalRows, fs)
			Expect(err).NotTo(HaveOccurred())
			Expect(idx).To(Equal(expected))
		},
		Entry("origin, by row", 1, 1, 5, 4, cmn.FillByRow, 0),
		Entry("origin, by column", 1, 1, 5, 4, cmn.FillByColumn, 0),
		Entry("interior, by row", 3, 2, 5, 4, cmn.FillByRow, 7),
		Entry("interior, by column", 3, 2, 5, 4, cmn.FillByColumn, 9),
		Entry("last cell, by row", 5, 4, 5, 4, cmn.FillByRow, 19),
		Entry("last cell, by column", 5, 4, 5, 4, cmn.FillByColumn, 19),
	)

	It("inverts StartIndex for every cell under both strategies", func() {
		const totalCols, totalRows = 7, 3
		for _, fs := range []cmn.FillingStrategy{cmn.FillByRow, cmn.FillByColumn} {
			for col := 1; col <= totalCols; col++ {
				for row := 1; row <= totalRows; row++ {
					idx, err := cmn.StartIndex(col, row, totalCols, totalRows, fs)
					Expect(err).NotTo(HaveOccurred())
					loc := cmn.CoordinateAt(idx, totalCols, totalRows, fs)
					Expect(loc).To(Equal(cmn.GridLocation{X: col, Y: row}))
				}
			}
		}
	})

	It("assigns consecutive cells without repetition", func() {
		p, err := cmn.NewByRow(1, 1, 3, 3,
			"SS1", "SS2", "SS3", "SS4", "SS5", "SS6", "SS7", "SS8", "SS9")
		Expect(err).NotTo(HaveOccurred())
		assignments := p.Resolve()
		Expect(assignments).To(HaveLen(9))
		seen := make(map[cmn.GridLocation]bool, 9)
		for _, a := range assignments {
			Expect(seen[a.Loc]).To(BeFalse())
			seen[a.Loc] = true
		}
	})
})

var _ = Describe("Container snapshot", func() {
	newGrid := func(rows, cols int, used ...cmn.ContentLocation) *cmn.Container {
		c, err := cmn.NewContainer(cmn.ContainerInfo{
			ItemInfo:   cmn.ItemInfo{ID: 1, GlobalID: "IC1"},
			CType:      cmn.CTypeGrid,
			GridLayout: &cmn.GridLayout{RowsNumber: rows, ColumnsNumber: cols},
			Locations:  used,
		})
		Expect(err).NotTo(HaveOccurred())
		return c
	}

	It("partitions cells into used and free", func() {
		c := newGrid(3, 4,
			cmn.ContentLocation{CoordX: 1, CoordY: 1},
			cmn.ContentLocation{CoordX: 4, CoordY: 3})
		Expect(c.Capacity()).To(Equal(12))
		Expect(c.InUse()).To(Equal(2))
		Expect(c.Free()).To(Equal(10))
		Expect(len(c.UsedLocations()) + len(c.FreeLocations())).To(Equal(c.Capacity()))
	})

	It("enumerates free cells column by column", func() {
		c := newGrid(2, 2, cmn.ContentLocation{CoordX: 1, CoordY: 2})
		Expect(c.FreeLocations()).To(Equal([]cmn.GridLocation{
			{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2},
		}))
	})

	It("reports as many free cells as its free count", func() {
		c := newGrid(2, 3,
			cmn.ContentLocation{CoordX: 1, CoordY: 1},
			cmn.ContentLocation{CoordX: 2, CoordY: 1})
		Expect(c.FreeLocations()).To(HaveLen(c.Free()))
		Expect(c.UsedLocations()).To(HaveLen(c.InUse()))
	})
})
