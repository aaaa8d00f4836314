package mappers

import (
	"testing"

	"github.com/companieshouse/sca.api.ch.gov.uk/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapProviderScaMethods(t *testing.T) {
	Convey("Provider methods map onto the rest model", t, func() {
		methods := []models.ProviderScaMethod{
			{ID: "sms-1", Type: "SMS_OTP", Name: "SMS", ExplanationText: "sent to your phone"},
			{ID: "push-1", Type: "PUSH_OTP"},
		}

		mapped := MapProviderScaMethods(methods)
		So(len(mapped), ShouldEqual, 2)
		So(mapped[0], ShouldResemble, models.ScaMethodRest{ID: "sms-1", Type: "SMS_OTP", Name: "SMS", ExplanationText: "sent to your phone"})
		So(mapped[1].ID, ShouldEqual, "push-1")
	})

	Convey("No methods maps to an empty list", t, func() {
		So(MapProviderScaMethods(nil), ShouldBeEmpty)
	})
}

func TestUnitMapProviderChallenge(t *testing.T) {
	Convey("A provider challenge maps onto the rest model", t, func() {
		challenge := &models.IncomingProviderChallengeResponse{
			Result:         models.ProviderResultApproved,
			OtpMaxLength:   6,
			OtpFormat:      "integer",
			AdditionalInfo: "expires in five minutes",
		}

		mapped := MapProviderChallenge(challenge)
		So(mapped.OtpMaxLength, ShouldEqual, 6)
		So(mapped.OtpFormat, ShouldEqual, "integer")
		So(mapped.AdditionalInfo, ShouldEqual, "expires in five minutes")
	})

	Convey("A nil challenge maps to nil", t, func() {
		So(MapProviderChallenge(nil), ShouldBeNil)
	})
}
