package roboviz

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Scene", func() {
	Describe("construction", func() {
		It("rejects a non-positive pixel size", func() {
			_, err := NewScene(0, 10)
			Expect(err).To(HaveOccurred())
			_, err = NewMapScene(-5, 10)
			Expect(err).To(HaveOccurred())
		})

		It("rejects a non-positive world size", func() {
			_, err := NewScene(800, 0)
			Expect(err).To(HaveOccurred())
		})

		It("centers the origin for the pose-only variant", func() {
			s, err := NewScene(800, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Shift()).To(Equal(-400.0))
		})

		It("puts the origin in the corner for the map variant", func() {
			s, err := NewMapScene(800, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Shift()).To(Equal(0.0))
		})
	})

	Describe("pose updates", func() {
		It("keeps no glyph before the first pose", func() {
			s, _ := NewMapScene(800, 10)
			Expect(s.Glyph()).To(BeNil())
		})

		It("replaces the glyph instance even for an identical pose", func() {
			s, _ := NewMapScene(800, 10)
			s.SetPose(5, 5, 30)
			first := s.Glyph()
			s.SetPose(5, 5, 30)
			second := s.Glyph()

			Expect(second).NotTo(BeIdenticalTo(first))
			Expect(*second).To(Equal(*first))
		})

		It("places the glyph by dividing world units by the scale", func() {
			s, _ := NewMapScene(800, 10)
			s.SetPose(5, 5, 0)
			Expect(s.Glyph().Pos).To(Equal(Vec2{400, 400}))
		})
	})

	Describe("trajectory", func() {
		It("accumulates exactly N-1 segments after N poses", func() {
			s, _ := NewMapScene(800, 10, WithTrajectory())
			poses := []Pose{
				{1, 1, 0}, {2, 1, 45}, {2, 2, 90}, {3, 3, 45}, {4, 3, 0},
			}
			for _, p := range poses {
				s.SetPose(p.X, p.Y, p.ThetaDeg)
			}

			segs := s.Segments()
			Expect(segs).To(HaveLen(len(poses) - 1))
			for i, seg := range segs {
				scale := s.Scale()
				Expect(seg.From).To(Equal(Vec2{poses[i].X / scale, poses[i].Y / scale}))
				Expect(seg.To).To(Equal(Vec2{poses[i+1].X / scale, poses[i+1].Y / scale}))
			}
		})

		It("records nothing when trajectory display is off", func() {
			s, _ := NewMapScene(800, 10)
			s.SetPose(1, 1, 0)
			s.SetPose(2, 2, 0)
			Expect(s.Segments()).To(BeEmpty())
		})
	})

	Describe("zero angle", func() {
		It("shows the first heading as the configured angle", func() {
			s, _ := NewScene(800, 10, WithZeroAngle(0))
			s.SetPose(0, 0, 30)
			Expect(s.Glyph().ThetaDeg).To(Equal(0.0))
		})

		It("shows later headings relative to the first", func() {
			s, _ := NewScene(800, 10, WithZeroAngle(90))
			s.SetPose(0, 0, 30)
			s.SetPose(0, 0, 45)
			Expect(s.Glyph().ThetaDeg).To(Equal(105.0))
		})

		It("leaves headings untouched when not configured", func() {
			s, _ := NewScene(800, 10)
			s.SetPose(0, 0, 30)
			Expect(s.Glyph().ThetaDeg).To(Equal(30.0))
		})
	})

	Describe("map raster", func() {
		It("rejects a buffer of the wrong length and keeps no data", func() {
			s, _ := NewMapScene(4, 1)
			err := s.SetMap(make([]byte, 15))
			Expect(err).To(MatchError(ErrMapSize))
			Expect(s.Raster()).To(BeNil())
			Expect(s.MapVersion()).To(BeZero())
		})

		It("retains a copy of a valid buffer", func() {
			s, _ := NewMapScene(4, 1)
			buf := make([]byte, 16)
			buf[3] = 200
			Expect(s.SetMap(buf)).To(Succeed())

			buf[3] = 0 // caller's buffer is not aliased
			Expect(s.Raster()[3]).To(Equal(byte(200)))
		})

		It("reuses the raster allocation across updates", func() {
			s, _ := NewMapScene(4, 1)
			Expect(s.SetMap(make([]byte, 16))).To(Succeed())
			first := &s.Raster()[0]
			Expect(s.SetMap(make([]byte, 16))).To(Succeed())
			Expect(&s.Raster()[0]).To(BeIdenticalTo(first))
		})

		It("bumps the version on every accepted update", func() {
			s, _ := NewMapScene(4, 1)
			Expect(s.SetMap(make([]byte, 16))).To(Succeed())
			Expect(s.SetMap(make([]byte, 16))).To(Succeed())
			Expect(s.MapVersion()).To(Equal(uint64(2)))

			Expect(s.SetMap(make([]byte, 3))).NotTo(Succeed())
			Expect(s.MapVersion()).To(Equal(uint64(2)))
		})
	})
})
