package hydration

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("User", func() {
	var (
		mockCtrl *gomock.Controller
		pacer    *MockPacer
		user     *User
		glass    *Glass
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		pacer = NewMockPacer(mockCtrl)
		user = NewUser("John Doe", pacer)
		glass = NewGlass(0)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should start thirsty", func() {
		Expect(user.Name()).To(Equal("John Doe"))
		Expect(user.IsThirsty()).To(BeTrue())
	})

	DescribeTable("drinking",
		func(volume, amount, expectedVolume, expectedDrunk int) {
			glass.SetVolume(volume)

			drunk := user.Drink(glass, amount)

			Expect(glass.Volume()).To(Equal(expectedVolume))
			Expect(drunk).To(Equal(expectedDrunk))
			Expect(user.IsThirsty()).To(BeFalse())
		},
		Entry("a sip", 100, 10, 90, 10),
		Entry("the rest of the glass", 30, 30, 0, 30),
		Entry("more than the glass holds", 20, 50, 0, 20),
		Entry("from an empty glass", 0, 40, 0, 0),
		Entry("nothing", 60, 0, 60, 0),
	)

	It("should leave max(0, volume - amount) for any non-negative amount", func() {
		for volume := 0; volume <= MaxCapacity; volume += 5 {
			for amount := 0; amount <= 120; amount += 7 {
				glass.SetVolume(volume)

				user.Drink(glass, amount)

				Expect(glass.Volume()).To(Equal(max(0, volume-amount)))
			}
		}
	})

	It("should not overflow the glass on a negative amount", func() {
		glass.SetVolume(95)

		user.Drink(glass, -20)

		Expect(glass.Volume()).To(Equal(MaxCapacity))
		Expect(user.IsThirsty()).To(BeFalse())
	})

	It("should get thirsty after working", func() {
		glass.SetVolume(50)
		user.Drink(glass, 10)
		pacer.EXPECT().Pause().Times(1)

		user.Work()

		Expect(user.IsThirsty()).To(BeTrue())
	})

	It("should stay thirsty after working while thirsty", func() {
		pacer.EXPECT().Pause().Times(1)

		user.Work()

		Expect(user.IsThirsty()).To(BeTrue())
	})

	It("should get thirsty after resting", func() {
		user.Drink(glass, 10)
		pacer.EXPECT().Pause().Times(1)

		user.Rest()

		Expect(user.IsThirsty()).To(BeTrue())
	})

	It("should not need a pacer", func() {
		lazy := NewUser("Eve Adams", nil)

		lazy.Work()

		Expect(lazy.IsThirsty()).To(BeTrue())
	})
})
